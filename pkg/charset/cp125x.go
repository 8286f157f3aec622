package charset

import "golang.org/x/text/encoding/charmap"

func init() {
	register(newCharmapCharset("cp1255", charmap.Windows1255))
	register(newCharmapCharset("cp1256", charmap.Windows1256))
}
