// Command octatile searches for a hyperbolic octagon that tiles the Poincaré
// disk and draws a patch of the tiling as SVG.
package main

func main() {
	Execute()
}
