package pandanet

import "github.com/google/uuid"

// Element type codes used by the switch table. Bus-to-bus switches are
// rejected during conversion, so no bus code is carried here.
const (
	ElementLine    = "l"
	ElementTrafo   = "t"
	ElementTrafo3W = "t3"
)

// Bus type codes.
const (
	BusTypeBusbar = "b"
	BusTypeNode   = "n"
)

// Bus is one row of the bus table.
type Bus struct {
	UID       uuid.UUID
	Name      string
	VnKV      float64
	Type      string
	Coords    []float64
	Zone      string
	InService bool
	MaxVmPU   float64
	MinVmPU   float64
}

// Load is one row of the load table.
type Load struct {
	UID           uuid.UUID
	Name          string
	Bus           uuid.UUID
	PMW           float64
	QMvar         float64
	ConstZPercent float64
	ConstIPercent float64
	SnMVA         float64
	Scaling       float64
	InService     bool
	Type          string
	MaxPMW        float64
	MinPMW        float64
	MaxQMvar      float64
	MinQMvar      float64
	Controllable  *bool
}

// Trafo is one row of the two winding transformer table.
type Trafo struct {
	UID             uuid.UUID
	Name            string
	HVBus           uuid.UUID
	LVBus           uuid.UUID
	SnMVA           float64
	VnHVKV          float64
	VnLVKV          float64
	VKRPercent      float64
	VKPercent       float64
	PFeKW           float64
	I0Percent       float64
	ShiftDegree     float64
	TapSide         string
	TapNeutral      int
	TapMax          int
	TapMin          int
	TapStepPercent  float64
	TapStepDegree   float64
	TapPos          int
	TapPhaseShifter bool
	TapSetVmPU      float64
	InService       bool
	Parallel        int
	DF              float64
	MaxLoading      float64
	VK0Percent      float64
	VKR0Percent     float64
	Mag0Percent     float64
	Mag0RX          float64
	SI0HVPartial    float64
	PTPercent       float64
	XNOhm           float64
}

// Trafo3W is one row of the three winding transformer table.
type Trafo3W struct {
	UID            uuid.UUID
	Name           string
	HVBus          uuid.UUID
	MVBus          uuid.UUID
	LVBus          uuid.UUID
	VnHVKV         float64
	VnMVKV         float64
	VnLVKV         float64
	SnHVMVA        float64
	SnMVMVA        float64
	SnLVMVA        float64
	VKHVPercent    float64
	VKMVPercent    float64
	VKLVPercent    float64
	VKRHVPercent   float64
	VKRMVPercent   float64
	VKRLVPercent   float64
	PFeKW          float64
	I0Percent      float64
	ShiftMVDegree  float64
	ShiftLVDegree  float64
	TapSide        string
	TapStepPercent float64
	TapStepDegree  float64
	TapPos         int
	TapNeutral     int
	TapMax         int
	TapMin         int
	TapAtStarPoint bool
	InService      bool
	MaxLoading     float64
}

// Gen is one row of the generator table.
type Gen struct {
	UID          uuid.UUID
	Name         string
	Bus          uuid.UUID
	PMW          float64
	VmPU         float64
	SnMVA        float64
	MaxQMvar     float64
	MinQMvar     float64
	MinPMW       float64
	MaxPMW       float64
	MinVmPU      float64
	MaxVmPU      float64
	Scaling      float64
	Type         string
	Slack        bool
	SlackWeight  float64
	Controllable bool
	VnKV         float64
	XDSSPU       float64
	RDSSOhm      float64
	CosPhi       float64
	InService    bool
}

// Line is one row of the line table.
type Line struct {
	UID         uuid.UUID
	Name        string
	FromBus     uuid.UUID
	ToBus       uuid.UUID
	Coords      [][]float64
	LengthKM    float64
	ROhmPerKM   float64
	XOhmPerKM   float64
	CNFPerKM    float64
	MaxIKA      float64
	InService   bool
	DF          float64
	Parallel    int
	GUSPerKM    float64
	MaxLoading  float64
	Alpha       float64
	Temperature float64
	R0OhmPerKM  float64
	X0OhmPerKM  float64
	C0NFPerKM   float64
	G0USPerKM   float64
}

// Ward is one row of the ward table.
type Ward struct {
	UID       uuid.UUID
	Name      string
	Bus       uuid.UUID
	PsMW      float64
	QsMvar    float64
	PzMW      float64
	QzMvar    float64
	InService bool
}

// Shunt is one row of the shunt table.
type Shunt struct {
	UID   uuid.UUID
	Bus   uuid.UUID
	PMW   float64
	QMvar float64
}

// Switch is one row of the switch table. Element references the uid of the
// connected element; ET carries its element type code.
type Switch struct {
	UID     uuid.UUID
	Name    string
	Bus     uuid.UUID
	Element uuid.UUID
	ET      string
	Closed  bool
	InKA    float64
}
