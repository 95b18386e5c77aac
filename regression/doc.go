// Package regression fits origin-pinned polynomials to runtime measurements
// and locates where two fitted curves cross.
//
// Every model has the form
//
//	y = c₁·x + c₂·x² + … + c_d·x^d
//
// with no constant term, so every curve passes through the origin. Degrees 1
// (linear), 2 (quadratic) and 3 (cubic) are supported. Coefficients are always
// stored in ascending order of power starting at x¹.
//
// # Fitting
//
// Fit solves the ordinary least-squares problem for a single degree:
//
//	model, err := regression.Fit(sizes, runtimes, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Formula, model.RSquared)
//
// Analyze fits several degrees to one observation set and ranks the models by
// R², best first:
//
//	result, err := regression.Analyze(obs, regression.WithDegrees(2, 3))
//
// # Intersections
//
// Intersect finds the crossover points of a quadratic and a linear fit. Since
// neither has a constant term, their difference is a quadratic with a zero
// constant and is solved in closed form. A root is reported only when it lies
// inside the given Window and the linear fit is strictly positive there:
//
//	points, err := regression.Intersect(quad.Coefficients, line.Coefficients, regression.DefaultWindow)
//
// Roots outside the window, or where the linear fit is not positive, are
// discarded even though they are valid solutions. An empty result means the
// curves do not cross inside the window.
package regression
