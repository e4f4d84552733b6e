// Package construct defines the constructor names used as error prefixes.
package construct

//-----------------------------------------------------------------------------
// Constructor Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodJoin is the canonical name for the Join constructor.
	MethodJoin = "Join"
	// MethodDuoprism is the canonical name for the Duoprism constructor.
	MethodDuoprism = "Duoprism"
	// MethodTegum is the canonical name for the Tegum constructor.
	MethodTegum = "Tegum"
	// MethodPyramid is the canonical name for the Pyramid constructor.
	MethodPyramid = "Pyramid"
	// MethodPrism is the canonical name for the Prism constructor.
	MethodPrism = "Prism"
	// MethodBipyramid is the canonical name for the Bipyramid constructor.
	MethodBipyramid = "Bipyramid"
	// MethodAntiprism is the canonical name for the Antiprism constructor.
	MethodAntiprism = "Antiprism"
	// MethodCompound is the canonical name for the Compound constructor.
	MethodCompound = "Compound"
	// MethodPetrieDual is the canonical name for the PetrieDual constructor.
	MethodPetrieDual = "PetrieDual"
	// MethodDual is the canonical name for the Dual facade.
	MethodDual = "Dual"
	// MethodVertexFigure is the canonical name for the VertexFigure facade.
	MethodVertexFigure = "VertexFigure"
	// MethodSection is the canonical name for the Section facade.
	MethodSection = "Section"
)

// MinCompoundRank is the smallest rank at which two polytopes can share
// their extrema: below it the diamond condition between the shared
// nullitope and a shared maximal element fails.
const MinCompoundRank = 2

// PetrieRank is the only rank the Petrie dual is defined for.
const PetrieRank = 3
