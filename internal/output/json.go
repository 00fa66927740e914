package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameRecord is the saved form of a game. Moves are in coordinate notation
// so the record can be replayed through the move parser.
type GameRecord struct {
	ID          string   `json:"id"`
	StartFEN    string   `json:"start_fen"`
	Moves       []string `json:"moves"`
	SAN         []string `json:"san,omitempty"`
	Result      string   `json:"result"`
	Termination string   `json:"termination"`
	FinalFEN    string   `json:"final_fen"`
}

// GameRecords holds multiple records for array output.
type GameRecords struct {
	Games []*GameRecord `json:"games"`
}

// NewGameRecord converts a game to its saved form.
func NewGameRecord(g *game.Game) *GameRecord {
	history := g.History()
	record := &GameRecord{
		ID:          g.ID().String(),
		StartFEN:    g.StartFEN(),
		Moves:       make([]string, len(history)),
		SAN:         make([]string, len(history)),
		Result:      g.State().Result(),
		Termination: g.State().String(),
		FinalFEN:    g.FEN(),
	}
	for i, h := range history {
		record.Moves[i] = h.Move.String()
		record.SAN[i] = h.SAN
	}
	return record
}

// Replay rebuilds the game by playing the recorded moves from the recorded
// start position. Extra options are applied after the record's own.
func (r *GameRecord) Replay(opts ...game.Option) (*game.Game, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "record id %q", r.ID)
	}

	g, err := game.New(append([]game.Option{game.WithFEN(r.StartFEN), game.WithID(id)}, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, text := range r.Moves {
		if _, err := g.PlayText(text); err != nil {
			return nil, errors.Wrapf(err, "replay game %s", r.ID)
		}
	}

	if r.FinalFEN != "" && g.FEN() != r.FinalFEN {
		return nil, fmt.Errorf("replay game %s: final position %q does not match record %q", r.ID, g.FEN(), r.FinalFEN)
	}
	return g, nil
}

// ReadGameRecords decodes records written by a JSONWriter in either batch
// or single mode.
func ReadGameRecords(r io.Reader) ([]*GameRecord, error) {
	dec := json.NewDecoder(r)
	var records []*GameRecord

	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, errors.Wrap(err, "decode game records")
		}

		var batch GameRecords
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, errors.Wrap(err, "decode game records")
		}
		if batch.Games != nil {
			records = append(records, batch.Games...)
			continue
		}

		var record GameRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, errors.Wrap(err, "decode game record")
		}
		records = append(records, &record)
	}
}
