package advisor

import "bidding-coach/internal/convention"

// Point thresholds shared by the rule tables and by Explain.
const (
	RedoubleMin     = 10
	StrongOpenerMin = 22

	WeakTwoLength = 6
	PreemptLength = 7

	StaymanMin         = 8
	NTResponsePassMax  = 7
	NTResponseGameMin  = 10
	NTQuantitativeMin  = 16
	NTSmallSlamMin     = 20
	NTGrandSlamMin     = 21
	NTGerberMin        = 13
	TwoNTPassMax       = 3
	TwoNTGerberMin     = 5
	TwoNTQuantitative  = 11
	TwoNTSmallSlamMin  = 13
	TwoNTGrandSlamMin  = 16
	GameRaiseMin       = 13
	OneLevelNewSuitMin = 6
	TwoLevelNewSuitMin = 10
	PositiveOver2CMin  = 8
	PreemptGameRaise   = 15

	NTPenaltyDoubleMin = 15
	TwoNTOvercallMin   = 19
	TakeoutDoubleMin   = 12
	TakeoutShortMax    = 2

	SlamInviteMin = 32
	SmallSlamMin  = 33
	GrandSlamMin  = 37
)

// Point bands.
var (
	OneNTOpening    = convention.Range{Min: 15, Max: 17}
	TwoNTOpening    = convention.Range{Min: 20, Max: 21}
	OneLevelOpening = convention.Range{Min: 12, Max: 21}
	WeakTwo         = convention.Range{Min: 6, Max: 10}
	Preempt         = convention.Range{Min: 5, Max: 10}

	NTInvite      = convention.Range{Min: 8, Max: 9}
	SingleRaise   = convention.Range{Min: 6, Max: 9}
	LimitRaise    = convention.Range{Min: 10, Max: 12}
	OneNTReply    = convention.Range{Min: 6, Max: 10}
	MinorGameNT   = convention.Range{Min: 13, Max: 15}
	SuitOvercall  = convention.Range{Min: 8, Max: 16}
	JumpOvercall  = convention.Range{Min: 6, Max: 10}
	OneNTOvercall = convention.Range{Min: 15, Max: 18}
)
