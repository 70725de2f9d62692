// SPDX-License-Identifier: MIT
// Package systax classifies atomic structures by their structural
// dimensionality and, for periodic systems, by the repeating unit they are
// built from.
//
// A Classifier runs the whole pipeline on one structure:
//
//	structure ──► size check ──► dimensionality
//	                                 │
//	             0D ◄────────────────┤────────────────► 1D / 2D / 3D
//	      Atom | Molecule                     seed trials (nearest to the
//	     (minimized cell)                     center of mass first)
//	                                                   │
//	                                     periodicfinder.FindRegionDim
//	                                                   │
//	                                          classify.Classify
//	                                                   │
//	                          Material1D | Material2D | Surface | Crystal
//
// Everything below the orchestrator lives in its own package:
//
//	matrix/         3×3 vectors and matrices, LU inverse, symmetric eigen
//	atoms/          the Structure value and element tables
//	connectivity/   int-indexed graphs, BFS components, disjoint sets
//	delaunay/       3D Bowyer–Watson triangulation
//	geometry/       periodic displacements, cell transforms, dimensionality,
//	                Delaunay inside-test
//	region/         regions, sites, cells and categories
//	periodicfinder/ span discovery, basis selection, region growing
//	classify/       defect, adsorbate and outlier labelling
//	config/         tolerances, defaults, YAML/TOML loading
//	builder/        canonical test structures
//	structio/       structure and report files
//
// Engine packages are pure and never log; the Classifier logs at Debug level
// through an optional *slog.Logger, tagging each call with a run id.
//
// Quick start:
//
//	s, _ := builder.Build(builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1))
//	c, _ := systax.New(config.Default())
//	res, _ := c.Classify(s)
//	fmt.Println(res.Category) // Material2D
package systax
