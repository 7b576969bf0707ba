package qrcode

// BitMatrix квадратная матрица модулей QR-кода: true - темный, false - светлый.
// Создается кодировщиком на один запрос и передается растеризатору.
type BitMatrix struct {
	width int
	bits  []bool
}

// NewBitMatrix создает пустую (полностью светлую) матрицу width x width
func NewBitMatrix(width int) *BitMatrix {
	return &BitMatrix{
		width: width,
		bits:  make([]bool, width*width),
	}
}

// Width возвращает размер стороны матрицы
func (m *BitMatrix) Width() int {
	return m.width
}

// Get возвращает значение модуля (x, y)
func (m *BitMatrix) Get(x, y int) bool {
	return m.bits[y*m.width+x]
}

// Set делает модуль (x, y) темным
func (m *BitMatrix) Set(x, y int) {
	m.bits[y*m.width+x] = true
}

// setRegion закрашивает квадрат со стороной size, начиная с (left, top)
func (m *BitMatrix) setRegion(left, top, size int) {
	for y := top; y < top+size; y++ {
		row := y * m.width
		for x := left; x < left+size; x++ {
			m.bits[row+x] = true
		}
	}
}
