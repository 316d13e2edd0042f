package nru

// State is the Referenced/Modified pair of a page.
// The integer value of a State is also its NRU class;
// lower values are better eviction candidates.
type State uint8

const (
	// NotRefNotMod pages are neither referenced nor modified.
	// They are the cheapest to evict.
	NotRefNotMod State = iota
	// NotRefMod pages were written at some point,
	// but have not been referenced since the last tick.
	NotRefMod
	// RefNotMod pages were read since the last tick.
	RefNotMod
	// RefMod pages were referenced since the last tick
	// and would require a write-back if evicted.
	RefMod
)

// ClassCount is the number of distinct [State] values.
const ClassCount = int(RefMod) + 1

const (
	modifiedBit State = 1 << iota
	referencedBit
)

// Referenced reports if the R bit is set.
func (s State) Referenced() bool { return s&referencedBit != 0 }

// Modified reports if the M bit is set.
func (s State) Modified() bool { return s&modifiedBit != 0 }

func (s State) reference() State { return s | referencedBit }

func (s State) modify() State { return s | modifiedBit }

func (s State) tick() State { return s &^ referencedBit }

func (s State) valid() bool { return s <= RefMod }

func (s State) String() string {
	switch s {
	case NotRefNotMod:
		return "NotRef_NotMod"
	case NotRefMod:
		return "NotRef_Mod"
	case RefNotMod:
		return "Ref_NotMod"
	case RefMod:
		return "Ref_Mod"
	default:
		return "invalid"
	}
}
