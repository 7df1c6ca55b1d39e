package command

// GameState is the battle's top-level state machine value (spec §3
// "Battle state"). It lives in this package, rather than in battle, because
// the SetGameState command needs to name it; internal/battle re-exports it
// for callers that never otherwise touch internal/command.
type GameState uint8

const (
	WaitingForBothActions GameState = iota
	TurnInProgress
	WaitingForPlayer1Replacement
	WaitingForPlayer2Replacement
	WaitingForBothReplacements
	P1Win
	P2Win
	Draw
)

// BattleKind tags what ruleset governs a battle (spec §3 "Battle state").
type BattleKind uint8

const (
	KindWild BattleKind = iota
	KindTrainer
	KindSafari
	KindTournament
)
