package block

import "testing"

func TestClassification(t *testing.T) {
	super := Block{X: 1, Y: 1, Kx: 2, Ky: 2}
	if !super.IsSuperpixel() || super.IsPixel() || super.IsSubpixel() {
		t.Errorf("Kx=Ky=2 should classify as superpixel only")
	}
	pixel := Block{X: 1, Y: 1, Kx: 0, Ky: 0}
	if pixel.IsSuperpixel() || !pixel.IsPixel() || pixel.IsSubpixel() {
		t.Errorf("Kx=Ky=0 should classify as pixel only")
	}
	sub := Block{X: 1, Y: 1, Kx: -2, Ky: -2}
	if sub.IsSuperpixel() || sub.IsPixel() || !sub.IsSubpixel() {
		t.Errorf("Kx=Ky=-2 should classify as subpixel only")
	}
}

func TestPixelRectMatchesLevel(t *testing.T) {
	b := Block{X: 3, Y: 2, Kx: 2, Ky: 1}
	x0, y0, x1, y1 := b.PixelRect()
	if x0 != 12 || y0 != 4 || x1 != 16 || y1 != 6 {
		t.Errorf("PixelRect() = (%d,%d,%d,%d), want (12,4,16,6)", x0, y0, x1, y1)
	}
}

func TestPixelExtentSubpixel(t *testing.T) {
	b := Block{X: 3, Y: 3, Kx: -1, Ky: -1} // half-pixel subdivision
	px0, py0, px1, py1 := b.PixelExtent()
	if px0 != 1.5 || px1 != 2.0 || py0 != 1.5 || py1 != 2.0 {
		t.Errorf("PixelExtent() = (%v,%v,%v,%v), want (1.5,2.0,1.5,2.0)", px0, py0, px1, py1)
	}
}

func TestCanSubdivideXYRespectsFloor(t *testing.T) {
	floor := Block{Kx: MinK, Ky: MinK}
	if floor.CanSubdivideXY() {
		t.Error("block at MinK,MinK should not be further subdividable")
	}
	above := Block{Kx: MinK + 1, Ky: MinK}
	if !above.CanSubdivideXY() {
		t.Error("block with Kx above MinK should be subdividable")
	}
}
