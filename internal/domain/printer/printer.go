package printer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fixdesk/internal/shared/biztime"
)

type Printer struct {
	id           uint
	model        string
	machine      string
	serialNumber string
	nozzleSize   string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPrinter(model, machine, serialNumber, nozzleSize string) (*Printer, error) {
	model = strings.TrimSpace(model)
	machine = strings.TrimSpace(machine)
	serialNumber = strings.TrimSpace(serialNumber)

	if model == "" && machine == "" {
		return nil, fmt.Errorf("printer model or machine is required")
	}
	if model == "" {
		model = machine
	}
	if machine == "" {
		machine = model
	}
	if serialNumber == "" {
		serialNumber = TempSerial()
	}

	now := biztime.NowUTC()
	return &Printer{
		model:        model,
		machine:      machine,
		serialNumber: serialNumber,
		nozzleSize:   strings.TrimSpace(nozzleSize),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPrinter(
	id uint,
	model, machine, serialNumber, nozzleSize string,
	createdAt, updatedAt time.Time,
) (*Printer, error) {
	if id == 0 {
		return nil, fmt.Errorf("printer ID cannot be zero")
	}

	return &Printer{
		id:           id,
		model:        model,
		machine:      machine,
		serialNumber: serialNumber,
		nozzleSize:   nozzleSize,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Printer) ID() uint             { return p.id }
func (p *Printer) Model() string        { return p.model }
func (p *Printer) Machine() string      { return p.machine }
func (p *Printer) SerialNumber() string { return p.serialNumber }
func (p *Printer) NozzleSize() string   { return p.nozzleSize }
func (p *Printer) CreatedAt() time.Time { return p.createdAt }
func (p *Printer) UpdatedAt() time.Time { return p.updatedAt }

func (p *Printer) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("printer ID already set")
	}
	if id == 0 {
		return fmt.Errorf("printer ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Printer) SetModel(model string) {
	if model == "" {
		return
	}
	p.model = model
	p.machine = model
	p.updatedAt = biztime.NowUTC()
}

func (p *Printer) SetSerialNumber(serial string) {
	if serial == "" {
		return
	}
	p.serialNumber = serial
	p.updatedAt = biztime.NowUTC()
}

func (p *Printer) SetNozzleSize(size string) {
	p.nozzleSize = size
	p.updatedAt = biztime.NowUTC()
}

// TempSerial generates a placeholder serial for printers registered without
// one: TEMP-<unix-ms>-<3-digit-random>.
func TempSerial() string {
	return fmt.Sprintf("TEMP-%d-%d", time.Now().UnixMilli(), rand.Intn(900)+100)
}
