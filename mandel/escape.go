package mandel

// MaxIterations is the iteration cap used by the explorer.
const MaxIterations = 100

// Escape returns how many iterations of z = z*z + c, starting at z = 0 with
// c = x+iy, run before |z| reaches 2. The result is capped at maxIter.
func Escape(x, y float64, maxIter int) int {
	var zr, zi float64
	i := 0
	for zr*zr+zi*zi < 4 && i < maxIter {
		zr, zi = zr*zr-zi*zi+x, 2*zr*zi+y
		i++
	}
	return i
}
