package usecases

import "context"

type TicketStatsExecutor interface {
	Execute(ctx context.Context, query TicketStatsQuery) (*TicketStatsResult, error)
}

type TechnicianStatsExecutor interface {
	Execute(ctx context.Context, query TechnicianStatsQuery) (*TechnicianStatsResult, error)
}
