package buffer

// ChangeKind identifies the operation behind a Change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeRemove
	ChangeMove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeMove:
		return "move"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective mutation.
//
// For ChangeInsert and ChangeRemove, Offset is where Rune was inserted or
// from where it was removed. For ChangeMove, Offset equals CursorAfter and
// Rune is zero.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64

	Offset int
	Rune   rune

	CursorBefore int
	CursorAfter  int
	PosBefore    Pos
	PosAfter     Pos
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	cursorBefore  int
	posBefore     Pos

	offset int
	r      rune
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
		posBefore:     b.Pos(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	offset := cb.offset
	if cb.kind == ChangeMove {
		offset = b.cursor
	}
	b.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		Offset:        offset,
		Rune:          cb.r,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		PosBefore:     cb.posBefore,
		PosAfter:      b.Pos(),
	}
	b.hasLastChange = true
}
