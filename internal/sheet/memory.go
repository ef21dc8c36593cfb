package sheet

// Memory is an in-memory Source used by tests. Cells default to empty; Saves
// counts how many times Save was called so tests can assert the save-on-exit
// discipline.
type Memory struct {
	cells   map[[2]int]any
	fills   map[[2]int]string
	Saves   int
	SaveErr error
}

var _ Source = (*Memory)(nil)

// NewMemory returns an empty in-memory worksheet.
func NewMemory() *Memory {
	return &Memory{
		cells: make(map[[2]int]any),
		fills: make(map[[2]int]string),
	}
}

// Set places a value without going through the Source interface.
func (m *Memory) Set(row, col int, value any) *Memory {
	if value == nil {
		delete(m.cells, [2]int{row, col})
	} else {
		m.cells[[2]int{row, col}] = value
	}
	return m
}

// SetRow places values left to right starting at column 1.
func (m *Memory) SetRow(row int, values ...any) *Memory {
	for i, value := range values {
		m.Set(row, i+1, value)
	}
	return m
}

// SetFill records a background fill code for a cell.
func (m *Memory) SetFill(row, col int, code string) *Memory {
	m.fills[[2]int{row, col}] = code
	return m
}

func (m *Memory) Value(row, col int) (any, error) {
	return m.cells[[2]int{row, col}], nil
}

func (m *Memory) SetValue(row, col int, value any) error {
	m.Set(row, col, value)
	return nil
}

func (m *Memory) FillColor(row, col int) (string, error) {
	return m.fills[[2]int{row, col}], nil
}

func (m *Memory) Save() error {
	m.Saves++
	return m.SaveErr
}
