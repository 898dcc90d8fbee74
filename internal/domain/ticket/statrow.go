package ticket

// StatRow is a denormalized ticket row used by the statistics queries. The
// joins resolve the client name, printer model and technician email so the
// grouping can happen in one pass.
type StatRow struct {
	ID              uint
	Number          int64
	ClientName      string
	PrinterModel    string
	State           string
	TechnicianEmail string
	Stamp           string
	RepairDate      string
	RepairedMachine string
}
