package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

// _version is the version of keyhold.
// Set with -ldflags "-X main._version=..." at build time.
var _version = "dev"

// Stubbed in tests.
var _debugReadBuildInfo = debug.ReadBuildInfo

// _generateBuildReport reports VCS information embedded in the binary,
// if any.
var _generateBuildReport = func() string {
	info, ok := _debugReadBuildInfo()
	if !ok {
		return ""
	}

	var (
		revision, timestamp string
		dirty               bool
	)
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	var report []string
	if revision != "" {
		if dirty {
			revision += "-dirty"
		}
		report = append(report, revision)
	}
	if timestamp != "" {
		report = append(report, timestamp)
	}
	return strings.Join(report, " ")
}

type versionCmd struct{}

func (cmd *versionCmd) Run(app *kong.Kong) error {
	version := "keyhold " + _version
	if report := _generateBuildReport(); report != "" {
		version += " (" + report + ")"
	}

	fmt.Fprintln(app.Stdout, version)
	return nil
}

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	if err := new(versionCmd).Run(app); err != nil {
		return err
	}
	app.Exit(0)
	return nil
}
