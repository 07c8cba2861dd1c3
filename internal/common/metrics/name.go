package metrics

import "strings"

// nameReplacer maps every character Prometheus rejects in our service, job and
// topic names to an underscore.
var nameReplacer = strings.NewReplacer(
	" ", "_",
	".", "_",
	"-", "_",
	"=", "_",
	"/", "_",
	":", "_",
)

func FlattenName(name string) string {
	return nameReplacer.Replace(name)
}

func BuildFQName(names ...string) string {
	return FlattenName(strings.Join(names, "_"))
}
