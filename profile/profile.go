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

package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Column names of the dataframe returned by Frame().
const (
	ColMnemonic = "mnemonic"
	ColCount    = "count"
	ColPercent  = "percent"
)

// Profile counts executed instructions by mnemonic.
type Profile struct {
	crit sync.Mutex

	counts map[string]int64
	total  int64
	faults int64
}

// NewProfile is the preferred method of initialisation for the Profile type.
func NewProfile() *Profile {
	return &Profile{
		counts: make(map[string]int64),
	}
}

// Reset forgets all recorded instructions.
func (p *Profile) Reset() {
	p.crit.Lock()
	defer p.crit.Unlock()
	clear(p.counts)
	p.total = 0
	p.faults = 0
}

// Record the result of an instruction. Instructions that faulted are counted
// separately.
func (p *Profile) Record(r execution.Result) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if r.Fault != nil || r.Defn == nil {
		p.faults++
		return
	}

	p.counts[r.Defn.Mnemonic]++
	p.total++
}

// Total returns the number of instructions recorded. Faulted instructions are
// not included.
func (p *Profile) Total() int64 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.total
}

// Faults returns the number of faulted instructions recorded.
func (p *Profile) Faults() int64 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.faults
}

// Count returns the number of times the instruction has been recorded.
func (p *Profile) Count(mnemonic string) int64 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.counts[mnemonic]
}

// Frame returns the profile as a dataframe with the columns ColMnemonic,
// ColCount and ColPercent. Rows are sorted by count, most frequent first.
// Instructions with equal counts are sorted by mnemonic.
func (p *Profile) Frame() *dataframe.DataFrame {
	p.crit.Lock()
	defer p.crit.Unlock()

	mnemonics := make([]string, 0, len(p.counts))
	for m := range p.counts {
		mnemonics = append(mnemonics, m)
	}
	sort.Slice(mnemonics, func(i, j int) bool {
		ci := p.counts[mnemonics[i]]
		cj := p.counts[mnemonics[j]]
		if ci == cj {
			return mnemonics[i] < mnemonics[j]
		}
		return ci > cj
	})

	names := make([]interface{}, len(mnemonics))
	counts := make([]interface{}, len(mnemonics))
	percents := make([]interface{}, len(mnemonics))
	for i, m := range mnemonics {
		names[i] = m
		counts[i] = p.counts[m]
		percents[i] = float64(p.counts[m]) * 100.0 / float64(p.total)
	}

	return dataframe.NewDataFrame(
		dataframe.NewSeriesString(ColMnemonic, nil, names...),
		dataframe.NewSeriesInt64(ColCount, nil, counts...),
		dataframe.NewSeriesFloat64(ColPercent, nil, percents...),
	)
}

// Table returns the profile as a printable table.
func (p *Profile) Table() string {
	return p.Frame().Table()
}

// WriteCSV writes the profile as CSV, with a header row.
func (p *Profile) WriteCSV(w io.Writer) error {
	df := p.Frame()

	cw := csv.NewWriter(w)

	err := cw.Write([]string{ColMnemonic, ColCount, ColPercent})
	if err != nil {
		return curated.Errorf("profile: %v", err)
	}

	for row := 0; row < df.NRows(); row++ {
		rec := make([]string, len(df.Series))
		for i, s := range df.Series {
			switch v := s.Value(row).(type) {
			case string:
				rec[i] = v
			case int64:
				rec[i] = strconv.FormatInt(v, 10)
			case float64:
				rec[i] = strconv.FormatFloat(v, 'f', 2, 64)
			default:
				rec[i] = fmt.Sprintf("%v", v)
			}
		}

		err = cw.Write(rec)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return curated.Errorf("profile: %v", err)
	}

	return nil
}
