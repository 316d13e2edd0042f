package nru

// Memory translates linear addresses into (page, offset)
// pairs and records each access in its page [Table].
// Concurrent access must be guarded by the caller.
// Constructed by [NewMemory].
type Memory struct {
	pages    [][]byte
	table    *Table
	pageSize int
}

// NewMemory creates a zeroed [Memory] of
// pageCount pages, each pageSize bytes long.
func NewMemory(pageCount, pageSize int) (*Memory, error) {
	if pageSize <= 0 {
		return nil, sizeError("page size", pageSize)
	}
	table, err := NewTable(pageCount)
	if err != nil {
		return nil, err
	}
	var (
		backing = make([]byte, pageCount*pageSize)
		pages   = make([][]byte, pageCount)
	)
	for i := range pages {
		start := i * pageSize
		pages[i] = backing[start : start+pageSize : start+pageSize]
	}
	return &Memory{
		pages:    pages,
		table:    table,
		pageSize: pageSize,
	}, nil
}

// PageCount returns the number of pages.
func (m *Memory) PageCount() int { return len(m.pages) }

// PageSize returns the number of bytes per page.
func (m *Memory) PageSize() int { return m.pageSize }

// Table returns a read-only view of the page states.
func (m *Memory) Table() View { return readOnly{table: m.table} }

// Translate splits address into its page number
// and the offset within that page.
func (m *Memory) Translate(address int) (page, offset int, err error) {
	if limit := len(m.pages) * m.pageSize; address < 0 || address >= limit {
		return 0, 0, addressError(address, limit)
	}
	return address / m.pageSize, address % m.pageSize, nil
}

// Read returns the byte at address and marks its page as referenced.
// The page's Modified bit is not changed.
func (m *Memory) Read(address int) (byte, error) {
	page, offset, err := m.Translate(address)
	if err != nil {
		return 0, err
	}
	if err := m.table.MarkReferenced(page); err != nil {
		return 0, err
	}
	return m.pages[page][offset], nil
}

// Write stores value at address and marks its page as modified.
// The page's Referenced bit is not changed.
func (m *Memory) Write(address int, value byte) error {
	page, offset, err := m.Translate(address)
	if err != nil {
		return err
	}
	if err := m.table.MarkModified(page); err != nil {
		return err
	}
	m.pages[page][offset] = value
	return nil
}

// Reset simulates a clock tick, clearing every
// page's Referenced bit. Page contents are retained.
func (m *Memory) Reset() { m.table.Tick() }
