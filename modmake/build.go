package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	bytesealVersion = "1.0.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	byteseal := NewAppBuild("byteseal", "cmd/byteseal", bytesealVersion)
	byteseal.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", bytesealVersion).
			CgoEnabled(false)
	})
	byteseal.Variant("windows", "amd64")
	byteseal.Variant("linux", "amd64")
	byteseal.Variant("linux", "arm64")
	byteseal.Variant("darwin", "amd64")
	byteseal.Variant("darwin", "arm64")
	b.ImportApp(byteseal)

	b.Execute()
}
