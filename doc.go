// Gnssdist draws the elevation distribution of GNSS observables.
//
//
// Input: Tables
//
// The input is an already aggregated table: one row per elevation bin,
// one column per constellation and observable. Column names start with
// the constellation prefix, the rest of the name identifies the bin or
// frequency:
//      elev     GPS_10  GPS_20  GAL_10
//      0-10      12.0    14.0     9.0
//      10-20     18.0    21.5    17.0
//      ...
// The row order is kept and defines the order of the categories on the
// x-axis. Tables can be built in code (NewTable, AddColumn) or read from
// CSV and XLSX files (ReadCSV, ReadXLSX).
//
//
// Output: Figures
//
// For every known constellation with at least one matching column a
// figure is produced: a grid of panels with three columns, one bar panel
// per matching column. Plots of pseudorange residuals (PRres) get a green
// band marking the well behaved residuals around the middle bin.
// Figures are saved as
//      <dir>/png/<posfile>-<constellation>-<obs>-dist.png
// and optionally handed to a Viewer which blocks until closed.
//
//
// Look
//
// Panels are drawn in the style of R's ggplot2: gray panel background,
// white grid lines, translucent bars. The look is controlled by a Theme
// whose styles are AesMappings like
//      AesMapping{"fill": "blue", "alpha": "0.5", "linetype": "blank"}
//
package gnssdist
