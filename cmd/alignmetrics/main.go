// SPDX-License-Identifier: MIT

// Command alignmetrics evaluates graph-alignment embeddings with HITS@k and
// MRR, and builds the cost and structural matrices such evaluations use.
//
// Usage:
//
//	alignmetrics eval    --src emb1.txt --tgt emb2.txt --pairs test.txt
//	alignmetrics cost    --src-struct r1.txt --tgt-struct r2.txt --src-feat x1.txt --tgt-feat x2.txt --out cost.txt.zst
//	alignmetrics anchors --edges g1.edges --out r1.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
