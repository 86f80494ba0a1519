// Package export renders a Section's pairings and standings to PDF,
// the way the teacher's ExportRoundPairingsToPDF did for a
// model.Tournament.
package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"swisstd/internal/swiss"
)

func playerName(s *swiss.Section, id swiss.PlayerID) string {
	if p, ok := s.Players[id]; ok {
		return p.Name
	}
	return string(id)
}

// RoundPairingsToPDF renders a single round's pairing sheet: board,
// white player, black player, result.
func RoundPairingsToPDF(s *swiss.Section, roundNumber int) ([]byte, error) {
	var target *swiss.Round
	for i := range s.Rounds {
		if s.Rounds[i].Number == roundNumber {
			target = &s.Rounds[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("round %d not found in section %q", roundNumber, s.Name)
	}

	cfg := config.NewBuilder().WithPageNumber().Build()
	m := maroto.New(cfg)

	m.AddRows(
		row.New(20).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s - Round %d", s.Name, roundNumber), props.Text{
					Top:   3,
					Style: fontstyle.Bold,
					Align: align.Center,
					Size:  16,
				}),
			),
		),
	)

	m.AddRows(
		row.New(12).Add(
			col.New(2).Add(text.New("Board", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(4).Add(text.New("White", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(4).Add(text.New("Black", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(2).Add(text.New("Result", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
		),
	)

	for _, pairing := range target.Pairings {
		black := "BYE"
		if !pairing.IsBye {
			black = playerName(s, *pairing.BlackID)
		}
		result := "-"
		if pairing.Result != nil {
			result = string(*pairing.Result)
		}
		m.AddRows(
			row.New(8).Add(
				col.New(2).Add(text.New(fmt.Sprintf("%d", pairing.Board), props.Text{Align: align.Center, Size: 9})),
				col.New(4).Add(text.New(playerName(s, pairing.WhiteID), props.Text{Align: align.Left, Size: 9})),
				col.New(4).Add(text.New(black, props.Text{Align: align.Left, Size: 9})),
				col.New(2).Add(text.New(result, props.Text{Align: align.Center, Size: 9})),
			),
		)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating round PDF: %w", err)
	}
	return document.GetBytes(), nil
}

// StandingsToPDF renders the computed standings table: rank, name,
// score, and the four tiebreaks.
func StandingsToPDF(s *swiss.Section) ([]byte, error) {
	standings := swiss.ComputeStandings(s)

	cfg := config.NewBuilder().WithPageNumber().Build()
	m := maroto.New(cfg)

	m.AddRows(
		row.New(20).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s - Standings", s.Name), props.Text{
					Top:   3,
					Style: fontstyle.Bold,
					Align: align.Center,
					Size:  16,
				}),
			),
		),
	)

	m.AddRows(
		row.New(12).Add(
			col.New(2).Add(text.New("Rank", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(4).Add(text.New("Name", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(2).Add(text.New("Score", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(1).Add(text.New("Buch", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(1).Add(text.New("Med", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(1).Add(text.New("SB", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
			col.New(1).Add(text.New("Cum", props.Text{Top: 2, Style: fontstyle.Bold, Align: align.Center, Size: 10})),
		),
	)

	for _, pr := range standings {
		m.AddRows(
			row.New(8).Add(
				col.New(2).Add(text.New(fmt.Sprintf("%d", pr.Rank), props.Text{Align: align.Center, Size: 9})),
				col.New(4).Add(text.New(pr.Player.Name, props.Text{Align: align.Left, Size: 9})),
				col.New(2).Add(text.New(fmt.Sprintf("%.1f", pr.Player.Score.Float64()), props.Text{Align: align.Center, Size: 9})),
				col.New(1).Add(text.New(fmt.Sprintf("%.1f", pr.Buchholz.Float64()), props.Text{Align: align.Center, Size: 9})),
				col.New(1).Add(text.New(fmt.Sprintf("%.1f", pr.ModifiedMedian.Float64()), props.Text{Align: align.Center, Size: 9})),
				col.New(1).Add(text.New(fmt.Sprintf("%.1f", pr.SonnebornBerger.Float64()), props.Text{Align: align.Center, Size: 9})),
				col.New(1).Add(text.New(fmt.Sprintf("%.1f", pr.Cumulative.Float64()), props.Text{Align: align.Center, Size: 9})),
			),
		)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating standings PDF: %w", err)
	}
	return document.GetBytes(), nil
}
