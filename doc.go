// Package hepphenotools turns raw collider-event attributes into flat
// kinematic feature rows, classified particle collections, and normalized
// histograms ready for statistical analysis.
//
// 🚀 What is hep-pheno-tools?
//
//	A pure-Go feature engine for particle-physics phenomenology:
//		• Four-momenta: lossless (pt,η,φ,m) ⇄ (px,py,pz,E) with ΔR/Δη/Δφ metrics
//		• Particles: charge, category, kinematic-cut "good tag" evaluation
//		• Feature rows: per-particle scalars plus every pairwise delta, with
//		  stable, contract-grade labels
//		• Classification: per-category cuts, ΔR overlap removal, unified
//		  leading-pt orderings
//		• Histograms: Sturges binning, integral normalization, compatible
//		  summation/subtraction, hole filling
//		• Significance: approximate global discovery significance from binned
//		  signal/background counts
//
// Everything is organized as one package per concern:
//
//	fourvec/    — relativistic four-momentum value type & delta metrics
//	particle/   — Particle record, Kind enum, cut sets, taggers, MET builder
//	kinrow/     — ordered kinematic feature rows
//	classifier/ — cut application, category merging, overlap removal
//	histogram/  — binning, histogram arithmetic, hole filling
//	power/      — approximate global significance
//	dataset/    — feature-row tables, histogram collections, parallel fill
//
// File readers (Delphes, ATLAS open data, LHE) are external collaborators:
// they hand this module plain float64 attributes and integer tags, and get
// back feature rows and histograms. Nothing here touches the filesystem or
// the network.
//
//	go get github.com/Phenomenology-group-uniandes/hep-pheno-tools
package hepphenotools
