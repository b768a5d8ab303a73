// Package script runs Lua navigation scripts.
//
// A script builds a navigation list through the global nav module and may
// read sheet geometry through the global grid module:
//
//	for i = 1, 3 do nav.right() end   -- right column, three times
//	nav.down(250)                     -- down 250px
//	nav.extend_left()                 -- extend-left column
//	nav.select("B2")                  -- select cell B2
//	nav.run("up row, left 10px")      -- any textual list
//	if grid.hidden("C") then nav.right() end
//	print(grid.label("Total"))        -- printed through the logger
//
// Scripts run in a sandbox: only the base, string, table and math libraries
// are open, and file loading functions are removed. Every call into nav or
// grid counts against the instruction limit; pure Lua loops are bounded by
// the timeout.
package script
