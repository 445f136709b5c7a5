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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/ls8/govern"
	"github.com/jetsetilly/ls8/test"
)

func TestFinished(t *testing.T) {
	test.ExpectSuccess(t, govern.Halted.Finished())
	test.ExpectSuccess(t, govern.Ending.Finished())
	test.ExpectFailure(t, govern.Running.Finished())
	test.ExpectFailure(t, govern.Paused.Finished())
	test.ExpectEquality(t, govern.Stepping.String(), "Stepping")
}
