package spreadsheet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Save writes every occupied cell as one line:
//
//	<row> <col> <kind> <len> <payload>
//
// kind 1 is a number (the length field is a fixed 1 and the payload the
// rendered number), kind 2 is text with <len> payload bytes after a
// single separator space. Cells with empty stored content are omitted.
// Lines are emitted in ascending (row, col) order so output is
// deterministic.
func (s *Spreadsheet) Save(w io.Writer) error {
	positions := maps.Keys(s.cells)
	slices.SortFunc(positions, func(a, b Pos) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	bw := bufio.NewWriter(w)
	for _, pos := range positions {
		cl := s.cells[pos]
		switch cl.content.Kind() {
		case KindNumber:
			num, _ := cl.content.Number()
			rendered := strconv.FormatFloat(num, 'g', -1, 64)
			if _, err := fmt.Fprintf(bw, "%d %d %d 1 %s\n", pos.Row, pos.Col, KindNumber, rendered); err != nil {
				return err
			}
		case KindText:
			text, _ := cl.content.Text()
			if _, err := fmt.Fprintf(bw, "%d %d %d %d %s\n", pos.Row, pos.Col, KindText, len(text), text); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Load reads records produced by Save until the stream is exhausted and
// atomically replaces the grid with the loaded cells. Any malformed
// record — or a formula payload that fails to re-parse — rejects the
// whole load and leaves the sheet unchanged.
func (s *Spreadsheet) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	loaded := make(map[Pos]cell)

	for {
		tok, err := nextRecordToken(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadSaveData, err)
		}

		row, err := parseCoordinate(tok)
		if err != nil {
			return err
		}
		col, err := readCoordinate(br)
		if err != nil {
			return err
		}
		pos := Pos{Row: row, Col: col}

		kind, err := readCoordinate(br)
		if err != nil {
			return err
		}
		lengthTok, err := nextRecordToken(br)
		if err != nil {
			return fmt.Errorf("%w: truncated record", ErrBadSaveData)
		}
		length, err := strconv.Atoi(lengthTok)
		if err != nil || length < 0 {
			return fmt.Errorf("%w: bad length %q", ErrBadSaveData, lengthTok)
		}

		switch ValueKind(kind) {
		case KindNumber:
			// the length field is a fixed 1 for numbers; the payload is
			// read back as a token regardless
			numTok, err := nextRecordToken(br)
			if err != nil {
				return fmt.Errorf("%w: truncated number record", ErrBadSaveData)
			}
			num, err := strconv.ParseFloat(numTok, 64)
			if err != nil {
				return fmt.Errorf("%w: bad number %q", ErrBadSaveData, numTok)
			}
			loaded[pos] = cell{content: NumberValue(num)}

		case KindText:
			// exactly one separator space, then length raw payload bytes
			sep, err := br.ReadByte()
			if err != nil || sep != ' ' {
				return fmt.Errorf("%w: missing payload separator", ErrBadSaveData)
			}
			payload, err := io.ReadAll(io.LimitReader(br, int64(length)))
			if err != nil || len(payload) != length {
				return fmt.Errorf("%w: truncated text payload", ErrBadSaveData)
			}
			text := string(payload)

			newCell := cell{content: TextValue(text)}
			if strings.HasPrefix(text, "=") {
				builder := &treeBuilder{}
				if err := ParseFormula(text, builder); err != nil {
					return fmt.Errorf("%w: %v", ErrBadSaveData, err)
				}
				newCell.ast = builder.result()
			}
			loaded[pos] = newCell

		default:
			return fmt.Errorf("%w: unknown cell kind %d", ErrBadSaveData, kind)
		}
	}

	s.cells = loaded
	return nil
}

// readCoordinate reads the next token and parses it as a positive integer.
func readCoordinate(br *bufio.Reader) (int, error) {
	tok, err := nextRecordToken(br)
	if err != nil {
		return 0, fmt.Errorf("%w: truncated record", ErrBadSaveData)
	}
	return parseCoordinate(tok)
}

func parseCoordinate(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: bad field %q", ErrBadSaveData, tok)
	}
	return n, nil
}

// nextRecordToken skips whitespace and reads one whitespace-delimited
// token. io.EOF before any token byte means the stream ended cleanly.
func nextRecordToken(br *bufio.Reader) (string, error) {
	// skip leading whitespace
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
	}

	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}
