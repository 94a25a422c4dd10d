/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cost

import "fmt"

// scoreOffset is the score credited per consumed base.
const scoreOffset = 1

// ScoreModel is a Model rescaled into a score to be maximized.
//
// Every consumed base earns scoreOffset, and every unit of cost is charged
// Factor times, so for a global alignment of sequences of length n and m
//
//	score = (n+m)·scoreOffset - Factor·cost
//
// and the cost is recovered exactly by GlobalCost. Factor is chosen so that
// Match > 0, Sub < 0, Open ≤ 0 and Extend < 0 for every valid Model with
// positive Sub and Extend.
type ScoreModel struct {
	// Match is the score of one matching column (> 0).
	Match Score

	// Sub is the score of one substituted column (< 0).
	Sub Score

	// Open is the score charged once per gap (≤ 0).
	Open Score

	// Extend is the score of one gap column (< 0).
	Extend Score

	// Factor is the cost multiplier; GlobalCost divides by it.
	Factor int
}

// FromCosts derives the ScoreModel of cm.
func FromCosts(cm Model) ScoreModel {
	var factor int
	switch {
	case cm.Sub > 2 && cm.Extend > 1:
		factor = 1
	case cm.Sub == 1:
		factor = 3
	default:
		factor = 2
	}

	return ScoreModel{
		Match:  scoreOffset * 2,
		Sub:    -cm.Sub*factor + scoreOffset*2,
		Open:   -cm.Open * factor,
		Extend: -cm.Extend*factor + scoreOffset,
		Factor: factor,
	}
}

// GlobalCost converts the score of a global alignment of sequences of
// lengths refLen and queryLen back to its cost.
//
// It panics when the conversion is inexact: the score did not come from this
// ScoreModel, which is a bug in the caller.
func (s ScoreModel) GlobalCost(score Score, refLen, queryLen int) Cost {
	v := -score + (refLen+queryLen)*scoreOffset
	if v%s.Factor != 0 {
		panic(fmt.Sprintf("cost: score %d is not a global score of %v for lengths (%d,%d)", score, s, refLen, queryLen))
	}
	return v / s.Factor
}

// Score converts the cost of a global alignment of sequences of lengths
// refLen and queryLen to its score. It is the inverse of GlobalCost.
func (s ScoreModel) Score(c Cost, refLen, queryLen int) Score {
	return (refLen+queryLen)*scoreOffset - c*s.Factor
}

// String returns a compact rendering of the score parameters.
func (s ScoreModel) String() string {
	return fmt.Sprintf("ScoreModel{match:%d sub:%d open:%d extend:%d factor:%d}", s.Match, s.Sub, s.Open, s.Extend, s.Factor)
}
