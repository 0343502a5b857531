package scada

import (
	"sync"

	"github.com/cuonglm/osinfo"
)

// OSDescription returns a free-form description of the host OS, for logs.
var OSDescription = sync.OnceValue(func() string {
	return osinfo.New().String()
})
