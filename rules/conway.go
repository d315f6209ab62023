package rules

/*
Alive applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with exactly 2 or 3 neighbors; a dead cell is born
with exactly 3: (alive && neighbors == 2) || neighbors == 3
*/
func Alive(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
