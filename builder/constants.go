// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodGraphene is the canonical name for the Graphene constructor.
	MethodGraphene = "Graphene"
	// MethodMX2 is the canonical name for the MX2 constructor.
	MethodMX2 = "MX2"
	// MethodBCC100 is the canonical name for the BCC100 constructor.
	MethodBCC100 = "BCC100"
	// MethodDiamond is the canonical name for the Diamond constructor.
	MethodDiamond = "Diamond"
	// MethodRockSalt is the canonical name for the RockSalt constructor.
	MethodRockSalt = "RockSalt"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
)

//-----------------------------------------------------------------------------
// Reference lattice constants (Å)
//-----------------------------------------------------------------------------

const (
	// GrapheneA is the in-plane lattice constant of graphene.
	GrapheneA = 2.46
	// MoS2A is the in-plane lattice constant of 2H-MoS2.
	MoS2A = 3.16
	// MoS2Thickness is the S–S distance across a MoS2 layer.
	MoS2Thickness = 3.17
	// FeA is the cubic lattice constant of bcc iron.
	FeA = 2.87
	// SiA is the cubic lattice constant of diamond silicon.
	SiA = 5.43
	// NaClA is the cubic lattice constant of rock-salt NaCl.
	NaClA = 5.64
)

// DefaultVacuum is the vacuum added along non-periodic axes when WithVacuum
// is not given.
const DefaultVacuum = 10.0
