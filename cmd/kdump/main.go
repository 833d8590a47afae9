// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command kdump prints files as hex and ASCII listings, in the format the
// kdbg debug console uses for Dump.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bertos-go/kdebug/kdbg"
	"github.com/docopt/docopt-go"
	"golang.org/x/xerrors"
)

const usage = `Kdump.
Usage:
  kdump -h | --help
  kdump [--offset=N] [--length=N] <file>...
Options:
  -h --help      Show this screen.
  --offset=N     Skip N bytes at the start of each file [default: 0].
  --length=N     Dump at most N bytes of each file, 0 for all [default: 0].`

type config struct {
	offset int64
	length int64
	files  []string
}

var errHelp = xerrors.New("kdump: help requested")

func parseArgs(argv []string) (config, error) {
	var help bool
	p := &docopt.Parser{HelpHandler: func(err error, _ string) { help = err == nil }}
	opts, err := p.ParseArgs(usage, argv, "")
	switch {
	case err != nil:
		return config{}, err
	case help:
		return config{}, errHelp
	}

	var cfg config
	if cfg.offset, err = intOpt(opts, "--offset"); err != nil {
		return config{}, err
	}
	if cfg.length, err = intOpt(opts, "--length"); err != nil {
		return config{}, err
	}
	cfg.files, _ = opts["<file>"].([]string)
	return cfg, nil
}

func intOpt(opts docopt.Opts, key string) (int64, error) {
	s, err := opts.String(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || v < 0 {
		return 0, xerrors.Errorf("%s needs a non-negative integer, got %q", key, s)
	}
	return v, nil
}

func dumpFile(out *kdbg.Console, name string, cfg config) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(cfg.offset, io.SeekStart); err != nil {
		return xerrors.Errorf("%s: seek: %w", name, err)
	}
	var r io.Reader = f
	if cfg.length > 0 {
		r = io.LimitReader(f, cfg.length)
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return xerrors.Errorf("%s: %w", name, err)
	}

	if err := out.PutString(fmt.Sprintf("%s @%#x:\n", name, cfg.offset)); err != nil {
		return err
	}
	return out.Dump(buf)
}

func run(argv []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(argv)
	switch {
	case xerrors.Is(err, errHelp):
		fmt.Fprintln(stdout, usage)
		return 0
	case err != nil:
		fmt.Fprintln(stderr, usage)
		return 1
	}

	out := kdbg.NewConsole(stdout)
	status := 0
	for _, name := range cfg.files {
		if err := dumpFile(out, name, cfg); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			status = 1
		}
	}
	return status
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
