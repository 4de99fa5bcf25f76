package label

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable random names, used to tell runs and their artifacts apart in logs
// and temp files. Names are not unique, and the same object only keeps its
// name for the lifetime of the process.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out on demand, so they are nondeterministic to remind
	// the user that the same name doesn't mean the same thing between runs.
	petname.NonDeterministicMode()
}

// A fresh name like "brave-otter".
func New() string {
	return petname.Generate(2, "-")
}

// A stable name for obj, generated the first time it is asked for.
func Of(obj interface{}) string {
	if obj == nil || (reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil()) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
