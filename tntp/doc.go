// Package tntp reads the TNTP link and trip file format into a
// network.Network: a plain-text, line-oriented format with a metadata
// header (key/value pairs inside <ANGLE BRACKETS>, terminated by
// <END OF METADATA>) followed by fixed-column data rows.
//
// ReadNetwork mirrors the reference reader's two-pass structure: the
// link file supplies topology and per-arc BPR parameters plus the
// network-wide defaults (zone count, node count, first through node,
// distance/toll factors), and the trip file supplies the OD demand
// matrix, optionally overriding the distance/toll factors. Node
// indices in both files are 1-based; ReadNetwork converts them to the
// 0-based indices network.Network expects.
package tntp
