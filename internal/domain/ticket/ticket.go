package ticket

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/biztime"
)

// RepairedStates are the states that mean the machine left the workshop
// queue. Entering one of them stamps the repair date.
var RepairedStates = []string{"Lista", "Entregada", "Archivada"}

// IsRepairedState reports whether the given state counts as repaired.
func IsRepairedState(state string) bool {
	for _, s := range RepairedStates {
		if s == state {
			return true
		}
	}
	return false
}

type Ticket struct {
	id              uint
	number          int64
	clientID        uint
	technicianID    *uint
	printerID       *uint
	stamp           string
	state           string
	clientNotes     string
	technicianNotes string
	repairedMachine string
	repairDate      string
	requestBudget   string
	imageMain       string
	imageTicket     string
	imageExtra      string
	createdAt       time.Time
	updatedAt       time.Time
	comments        []*Comment
}

func NewTicket(
	number int64,
	clientID uint,
	technicianID *uint,
	printerID *uint,
	state string,
	clientNotes string,
) (*Ticket, error) {
	if number < 1 {
		return nil, fmt.Errorf("ticket number must be positive")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		number:       number,
		clientID:     clientID,
		technicianID: technicianID,
		printerID:    printerID,
		stamp:        biztime.TicketStamp(now),
		state:        state,
		clientNotes:  clientNotes,
		createdAt:    now,
		updatedAt:    now,
		comments:     []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	number int64,
	clientID uint,
	technicianID *uint,
	printerID *uint,
	stamp string,
	state string,
	clientNotes string,
	technicianNotes string,
	repairedMachine string,
	repairDate string,
	requestBudget string,
	imageMain, imageTicket, imageExtra string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}

	return &Ticket{
		id:              id,
		number:          number,
		clientID:        clientID,
		technicianID:    technicianID,
		printerID:       printerID,
		stamp:           stamp,
		state:           state,
		clientNotes:     clientNotes,
		technicianNotes: technicianNotes,
		repairedMachine: repairedMachine,
		repairDate:      repairDate,
		requestBudget:   requestBudget,
		imageMain:       imageMain,
		imageTicket:     imageTicket,
		imageExtra:      imageExtra,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		comments:        []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() int64           { return t.number }
func (t *Ticket) ClientID() uint          { return t.clientID }
func (t *Ticket) TechnicianID() *uint     { return t.technicianID }
func (t *Ticket) PrinterID() *uint        { return t.printerID }
func (t *Ticket) Stamp() string           { return t.stamp }
func (t *Ticket) State() string           { return t.state }
func (t *Ticket) ClientNotes() string     { return t.clientNotes }
func (t *Ticket) TechnicianNotes() string { return t.technicianNotes }
func (t *Ticket) RepairedMachine() string { return t.repairedMachine }
func (t *Ticket) RepairDate() string      { return t.repairDate }
func (t *Ticket) RequestBudget() string   { return t.requestBudget }
func (t *Ticket) ImageMain() string       { return t.imageMain }
func (t *Ticket) ImageTicket() string     { return t.imageTicket }
func (t *Ticket) ImageExtra() string      { return t.imageExtra }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) Comments() []*Comment    { return t.comments }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetComments(comments []*Comment) {
	if comments == nil {
		comments = []*Comment{}
	}
	t.comments = comments
}

// SetState changes the ticket state. Entering a repaired state stamps the
// repair date when it is not set yet.
func (t *Ticket) SetState(state string) {
	t.state = state
	if IsRepairedState(state) && t.repairDate == "" {
		t.repairDate = biztime.FormatInBizTimezone(biztime.NowUTC(), "2006-01-02")
	}
	t.updatedAt = biztime.NowUTC()
}

// MarkReady sets the ticket to "Lista", stamps the repair date and assigns
// the acting technician.
func (t *Ticket) MarkReady(technicianID uint) {
	t.state = "Lista"
	t.repairDate = biztime.FormatInBizTimezone(biztime.NowUTC(), "2006-01-02")
	t.technicianID = &technicianID
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetStamp(stamp string) {
	if stamp == "" {
		return
	}
	t.stamp = stamp
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetRepairDate(date string) {
	t.repairDate = date
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetClientNotes(notes string) {
	t.clientNotes = notes
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetTechnicianNotes(notes string) {
	t.technicianNotes = notes
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetRepairedMachine(machine string) {
	t.repairedMachine = machine
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetRequestBudget(pref string) {
	t.requestBudget = pref
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AssignTechnician(technicianID *uint) {
	t.technicianID = technicianID
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AttachPrinter(printerID uint) {
	t.printerID = &printerID
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetImages(main, ticketPhoto, extra string) {
	t.imageMain = main
	t.imageTicket = ticketPhoto
	t.imageExtra = extra
	t.updatedAt = biztime.NowUTC()
}
