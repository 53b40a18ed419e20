// Package canvas draws the views of the digitization walk-through with
// gogpu/gg.
//
// The drawing model follows the classroom tool: a square test figure
// (gray gradient with a large black "の"), grid views where every cell is
// filled with its gray level and separated by 1px white lines, a red
// rectangle marking the cell being quantized, and blue labels holding
// palette indices or their binary fields.
//
// # Example usage
//
//	fig, _ := canvas.Figure(256)
//	s, _ := digitize.NewSession(fig)
//	img, _ := canvas.RenderStep(s, 512)
//	_ = canvas.SavePNG("sampling.png", img)
package canvas
