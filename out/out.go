// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements saving, reading and plotting of FDTD study results
package out

import (
	"bufio"
	"encoding/csv"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
//  enctype -- "gob" or "json"; anything else gives gob
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
//  enctype -- "gob" or "json"; anything else gives gob
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// ResultPath returns the path of the results file; e.g. /tmp/gofdtd/cavity.res
func ResultPath(dirout, key string) string {
	return filepath.Join(dirout, key+".res")
}

// SaveResult encodes res into dirout/key.res
func SaveResult(res *fdtd.Result, dirout, key, enctype string) (err error) {
	if res == nil {
		return chk.Err("cannot save nil result")
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q: %v", dirout, err)
	}
	f, err := os.Create(ResultPath(dirout, key))
	if err != nil {
		return chk.Err("cannot create results file: %v", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	err = GetEncoder(w, enctype).Encode(res)
	if err != nil {
		return chk.Err("cannot encode result: %v", err)
	}
	return w.Flush()
}

// ReadResult decodes dirout/key.res
func ReadResult(dirout, key, enctype string) (res *fdtd.Result, err error) {
	f, err := os.Open(ResultPath(dirout, key))
	if err != nil {
		return nil, chk.Err("cannot open results file: %v", err)
	}
	defer f.Close()
	res = new(fdtd.Result)
	err = GetDecoder(bufio.NewReader(f), enctype).Decode(res)
	if err != nil {
		return nil, chk.Err("cannot decode result: %v", err)
	}
	return
}

// SaveSeries writes the monitor time series to dirout/key_series.csv
func SaveSeries(res *fdtd.Result, dirout, key string) (fn string, err error) {
	if len(res.TimesNs) != len(res.Samples) {
		return "", chk.Err("time series sizes do not match: %d != %d", len(res.TimesNs), len(res.Samples))
	}
	fn = filepath.Join(dirout, key+"_series.csv")
	f, err := os.Create(fn)
	if err != nil {
		return "", chk.Err("cannot create csv file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	err = w.Write([]string{"t_ns", res.Component})
	if err != nil {
		return
	}
	for i, t := range res.TimesNs {
		err = w.Write([]string{formatFloat(t), formatFloat(res.Samples[i])})
		if err != nil {
			return
		}
	}
	w.Flush()
	return fn, w.Error()
}

// ReadSeries reads a time series written by SaveSeries
func ReadSeries(fn string) (timesNs, samples []float64, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) != 2 {
			return nil, nil, chk.Err("row %d must have 2 columns", i)
		}
		timesNs = append(timesNs, io.Atof(row[0]))
		samples = append(samples, io.Atof(row[1]))
	}
	return
}

// formatFloat returns the shortest representation of v that reads back exactly
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
