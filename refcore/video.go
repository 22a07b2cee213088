package refcore

// Frame sizes in pixels.
const (
	baseWidth   = 256
	ntscHeight  = 224
	palHeight   = 239
	hiResWidth  = 512
	hiResHeight = 448
)

const (
	markerSize = 6
	white      = 0x7FFF
)

const (
	hiResTrigger  = "Joypad1 Select"
	markerCommand = "Joypad1 "
)

var markerButtons = []string{"B", "Y", "Select", "Start", "Up", "Down", "Left", "Right", "A", "X", "L", "R"}

var pointerTargets = []string{"Mouse1", "Mouse2", "Superscope", "Justifier1", "Justifier2"}

// frameSize picks the output size. Holding Select on pad 1 switches to
// interlaced hi-res when the settings allow it.
func (c *Core) frameSize() (width, height int) {
	if c.settings.SupportHiRes && c.held[hiResTrigger] {
		return hiResWidth, hiResHeight
	}
	if c.PAL() {
		return baseWidth, palHeight
	}
	return baseWidth, ntscHeight
}

// render draws a scrolling RGB555 gradient, a box for each held pad 1
// button and a cross at each pointer position.
func (c *Core) render(pix []uint16, pitch, width, height int) {
	if pitch < width || len(pix) < pitch*height {
		return
	}

	for y := 0; y < height; y++ {
		row := pix[y*pitch : y*pitch+width]
		for x := range row {
			r := uint16(x+int(c.frame)) & 0x1F
			g := uint16(y) & 0x1F
			b := uint16(c.frame>>2) & 0x1F
			row[x] = r | g<<5 | b<<10
		}
	}

	for i, name := range markerButtons {
		if !c.held[markerCommand+name] {
			continue
		}
		x0 := 4 + i*(markerSize+2)
		for y := 4; y < 4+markerSize && y < height; y++ {
			for x := x0; x < x0+markerSize && x < width; x++ {
				pix[y*pitch+x] = white
			}
		}
	}

	for _, name := range pointerTargets {
		p, ok := c.pointers[name]
		if !ok {
			continue
		}
		px, py := int(p[0]), int(p[1])
		for d := -3; d <= 3; d++ {
			plot(pix, pitch, width, height, px+d, py)
			plot(pix, pitch, width, height, px, py+d)
		}
	}
}

func plot(pix []uint16, pitch, width, height, x, y int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	pix[y*pitch+x] = white
}
