package rbtree

import (
	"fmt"
	"path"
	"runtime"

	nestedFormatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/zput/zxcTool/ztLog/zt_formatter"
)

var (
	Log = NewLogger()
)

// NewLogger builds the logger shared by trees that were not given one.
// Level defaults to warn so tree operations stay quiet unless asked.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetReportCaller(true)
	log.SetLevel(logrus.WarnLevel)

	// use logrus default TextFormatter to get the IsColored() method.
	defaultTextFormatter := logrus.TextFormatter{}
	_, _ = defaultTextFormatter.Format(&logrus.Entry{Logger: logrus.New()})
	isColoredLog := defaultTextFormatter.IsColored()
	log.SetFormatter(&zt_formatter.ZtFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return fmt.Sprintf("%s()", f.Function), fmt.Sprintf("%s:%d", filename, f.Line)
		},
		Formatter: nestedFormatter.Formatter{
			FieldsOrder:    []string{"component", "tree"},
			NoColors:       !isColoredLog,
			NoFieldsColors: !isColoredLog,
		},
	})
	return log
}

func doAssert(b bool) {
	if !b {
		panic("rbtree internal assertion failed")
	}
}
