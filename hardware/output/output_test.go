// This file is part of ls8.
//
// ls8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ls8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ls8.  If not, see <https://www.gnu.org/licenses/>.

package output_test

import (
	"testing"

	"github.com/jetsetilly/ls8/hardware/output"
	"github.com/jetsetilly/ls8/test"
)

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	o := output.NewWriter(tw)

	o.Emit(72, output.Decimal)
	test.ExpectSuccess(t, tw.Compare("72\n"))

	tw.Clear()
	o.Emit('H', output.Character)
	o.Emit('i', output.Character)
	test.ExpectSuccess(t, tw.Compare("Hi"))
}

func TestRecorder(t *testing.T) {
	r := &output.Recorder{}
	r.Emit(1, output.Decimal)
	r.Emit(2, output.Character)
	test.DemandEquality(t, len(r.Emissions), 2)
	test.ExpectEquality(t, r.Emissions[0], output.Emission{Value: 1, Mode: output.Decimal})
	test.ExpectEquality(t, r.Emissions[1], output.Emission{Value: 2, Mode: output.Character})

	r.Clear()
	test.ExpectEquality(t, len(r.Emissions), 0)
}
