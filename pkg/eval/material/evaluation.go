package eval

import (
	"rondo/pkg/chess"
)

// EvaluationService counts material only. It exists for tests and as a
// baseline when comparing evaluators.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *chess.Position) int {
	var white = p.Colors[chess.SideWhite]
	var black = p.Colors[chess.SideBlack]
	var eval = 100*(chess.PopCount(p.Pieces[chess.Pawn]&white)-chess.PopCount(p.Pieces[chess.Pawn]&black)) +
		400*(chess.PopCount(p.Pieces[chess.Knight]&white)-chess.PopCount(p.Pieces[chess.Knight]&black)) +
		400*(chess.PopCount(p.Pieces[chess.Bishop]&white)-chess.PopCount(p.Pieces[chess.Bishop]&black)) +
		600*(chess.PopCount(p.Pieces[chess.Rook]&white)-chess.PopCount(p.Pieces[chess.Rook]&black)) +
		1200*(chess.PopCount(p.Pieces[chess.Queen]&white)-chess.PopCount(p.Pieces[chess.Queen]&black))
	if p.Side == chess.SideBlack {
		eval = -eval
	}
	return eval
}
