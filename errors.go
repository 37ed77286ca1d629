/*
Copyright © 2013 the InMAP authors.
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

import "fmt"

// ConfigError reports a problem with a Config, Grid, or other user-supplied
// construction input discovered before a simulation starts running.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "lbm: invalid configuration: " + e.Msg
}

// InvariantError reports a violated physical invariant: a NaN or infinite
// population or a negative density found while a simulation is running
// (Step and Node identify where it was detected), or a relaxation time
// tau <= 0.5, which New rejects before any step runs (Step and Node are
// then -1).
type InvariantError struct {
	Step int
	Node int
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lbm: invariant violated at step %d, node %d: %s", e.Step, e.Node, e.Msg)
}
