package game

// Snapshot is the read-only view handed to renderers after every evaluation.
type Snapshot struct {
	Rows             int    `json:"rows"`
	Cols             int    `json:"cols"`
	Edges            []Edge `json:"edges"`
	Player           int    `json:"player"`
	Exit             int    `json:"exit"`
	Guards           []int  `json:"guards"`
	Turn             int    `json:"turn"`
	Energy           int    `json:"energy"`
	CriticalInactive int    `json:"criticalInactive"`
	Connected        bool   `json:"connected"`
	Status           string `json:"status"`
	Over             bool   `json:"over"`
	Reason           string `json:"reason,omitempty"`
	Diagnostic       string `json:"diagnostic,omitempty"`
}

// Snapshot copies the state so renderers never alias live game data.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Rows:             gs.Graph.Rows,
		Cols:             gs.Graph.Cols,
		Edges:            append([]Edge(nil), gs.Graph.edges...),
		Player:           gs.Player,
		Exit:             gs.Exit,
		Guards:           append([]int(nil), gs.Guards...),
		Turn:             gs.Turn,
		Energy:           gs.Energy,
		CriticalInactive: gs.Graph.CriticalInactive(),
		Connected:        gs.Connected(),
		Status:           gs.Status.String(),
		Over:             gs.Status.Over(),
		Reason:           gs.Reason,
	}
}
