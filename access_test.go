/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package lbm

import "testing"

// TestAccessFuncIsBijection checks that each built-in layout visits every
// offset in [0, 9*numNodes) exactly once across all (node, direction) pairs.
func TestAccessFuncIsBijection(t *testing.T) {
	const numNodes = 12
	for _, kind := range []AccessKind{Collision, Stream, Bundle} {
		t.Run(kind.String(), func(t *testing.T) {
			access := NewAccessFunc(kind, numNodes, false)
			seen := make([]bool, NumDirections*numNodes)
			for node := 0; node < numNodes; node++ {
				for d := Direction(0); d < NumDirections; d++ {
					idx := access(node, d)
					if idx < 0 || idx >= len(seen) {
						t.Fatalf("access(%d, %d) = %d, out of range [0, %d)", node, d, idx, len(seen))
					}
					if seen[idx] {
						t.Fatalf("access(%d, %d) = %d, already produced by another (node, direction) pair", node, d, idx)
					}
					seen[idx] = true
				}
			}
			for i, s := range seen {
				if !s {
					t.Errorf("offset %d was never produced", i)
				}
			}
		})
	}
}

func TestParseAccessKindRoundTrip(t *testing.T) {
	for _, kind := range []AccessKind{Collision, Stream, Bundle} {
		got, err := ParseAccessKind(kind.String())
		if err != nil {
			t.Fatalf("ParseAccessKind(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseAccessKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
}

func TestParseAccessKindUnknown(t *testing.T) {
	if _, err := ParseAccessKind("nonsense"); err == nil {
		t.Error("ParseAccessKind(\"nonsense\") returned nil error, want ConfigError")
	}
}

// TestNewAccessFuncDebugChecksBounds checks that the debug-wrapped
// AccessFunc panics on an out-of-range node, rather than silently
// returning an offset that would corrupt an unrelated node's populations.
func TestNewAccessFuncDebugChecksBounds(t *testing.T) {
	access := NewAccessFunc(Collision, 4, true)

	defer func() {
		if recover() == nil {
			t.Error("access(4, 0) on a 4-node layout did not panic in debug mode")
		}
	}()
	access(4, 0)
}

// TestNewAccessFuncNonDebugSkipsCheck checks that the non-debug AccessFunc
// does no bounds checking at all, matching the zero-overhead default.
func TestNewAccessFuncNonDebugSkipsCheck(t *testing.T) {
	access := NewAccessFunc(Collision, 4, false)
	defer func() {
		if recover() != nil {
			t.Error("access(4, 0) panicked with debug=false, want no check")
		}
	}()
	access(4, 0)
}
