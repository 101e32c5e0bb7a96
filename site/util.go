package site

import "os"

var readFile = os.ReadFile
var writeFile = os.WriteFile
var mkdirAll = os.MkdirAll
var stat = os.Stat
