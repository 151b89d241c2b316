// Package heat1d approximates solutions to the one-dimensional steady-state
// heat conduction equation with linear (hat) finite elements on a uniform
// mesh.
//
// The weak form of the equation is assembled into a dense stiffness matrix
// and load vector using fixed-order Gauss-Legendre quadrature (package
// heat1d/quad) and solved with Gaussian elimination and partial pivoting
// (package heat1d/dense).  Boundary conditions are configurable per
// endpoint: Dirichlet values are enforced by substituting the degree of
// freedom's equation with an identity row, Neumann fluxes enter the load
// vector, and Robin terms additionally fold into the stiffness matrix.
//
// Solve on the default problem reproduces the reference configuration: a
// rod of length 2 with conductivity 1 on [0,1] and 2 on (1,2], a Robin
// condition with flux -20 at x=0, and the value 3 fixed at the rightmost
// degree of freedom of the reduced system.  The last mesh node is held out
// of the solve and reported with value 0.
package heat1d
