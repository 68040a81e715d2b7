// meta/meta.go
package meta

// ROWS defines the default number of grid rows.
const ROWS = 6

// COLS defines the default number of grid columns.
const COLS = 6

// GUARDS defines the default number of guards hunting the player.
const GUARDS = 3

// ENERGY defines the player's starting energy.
const ENERGY = 40

// MIN_WEIGHT and MAX_WEIGHT bound the random edge weights used by Kruskal.
const MIN_WEIGHT = 1
const MAX_WEIGHT = 9

// BASE_ACTIVATION is the chance any edge starts active.
const BASE_ACTIVATION = 0.25

// CRITICAL_ACTIVATION is the extra chance a critical edge starts active.
const CRITICAL_ACTIVATION = 0.5

// ACTIVE_COST and INACTIVE_COST are the guards' traversal costs.
const ACTIVE_COST = 1
const INACTIVE_COST = 5

// TOGGLE_COST is the energy charged for flipping an edge.
const TOGGLE_COST = 2

// TURN_COST is the energy charged for every completed turn.
const TURN_COST = 1
