package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/flappy-quad/internal/config"
)

// Replay files are a single MessagePack document.
const (
	fileMagic   = "FLPR"
	fileVersion = 1
)

// ErrBadFile is returned when decoding data that is not a replay file.
var ErrBadFile = errors.New("replay: not a replay file")

type fileFrame struct {
	_msgpack struct{} `msgpack:",as_array"`

	DT      float64
	Jump    bool
	Confirm bool
}

type fileDoc struct {
	Magic    string      `msgpack:"magic"`
	Version  int         `msgpack:"version"`
	Seed     int64       `msgpack:"seed"`
	TickRate int         `msgpack:"tick_rate"`
	Config   string      `msgpack:"config"` // YAML, same as the database
	Score    float64     `msgpack:"score"`
	Frames   []fileFrame `msgpack:"frames"`
}

// Encode writes rec as a portable replay file.
func Encode(w io.Writer, rec Recording) error {
	cfg, err := config.Marshal(rec.Config)
	if err != nil {
		return err
	}

	doc := fileDoc{
		Magic:    fileMagic,
		Version:  fileVersion,
		Seed:     rec.Seed,
		TickRate: rec.TickRate,
		Config:   string(cfg),
		Score:    rec.Score,
		Frames:   make([]fileFrame, len(rec.Frames)),
	}
	for i, f := range rec.Frames {
		doc.Frames[i] = fileFrame{DT: f.DT, Jump: f.Jump, Confirm: f.Confirm}
	}

	if err := msgpack.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a replay file written by Encode.
func Decode(r io.Reader) (Recording, error) {
	var doc fileDoc
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return Recording{}, fmt.Errorf("%w: %v", ErrBadFile, err)
	}
	if doc.Magic != fileMagic {
		return Recording{}, ErrBadFile
	}
	if doc.Version != fileVersion {
		return Recording{}, fmt.Errorf("%w: unsupported version %d", ErrBadFile, doc.Version)
	}

	cfg, err := config.Parse([]byte(doc.Config))
	if err != nil {
		return Recording{}, fmt.Errorf("replay: embedded config: %w", err)
	}

	rec := Recording{
		Seed:     doc.Seed,
		TickRate: doc.TickRate,
		Config:   cfg,
		Score:    doc.Score,
		Frames:   make([]Frame, len(doc.Frames)),
	}
	for i, f := range doc.Frames {
		rec.Frames[i] = Frame{DT: f.DT, Jump: f.Jump, Confirm: f.Confirm}
	}
	return rec, nil
}

// WriteFile encodes rec to path, replacing any existing file.
func WriteFile(path string, rec Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, rec); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("replay: %w", err)
	}
	return f.Close()
}

// ReadFile decodes the replay file at path.
func ReadFile(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
