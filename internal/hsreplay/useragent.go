package hsreplay

import (
	"fmt"
	"runtime"
)

// UserAgent composes the client identification string sent with every
// replay-service request and with the object-storage PUT:
//
//	<appID>/<version>; <os release>;
func UserAgent(appID, version string) string {
	return fmt.Sprintf("%s/%s; %s;", appID, version, runtime.GOOS)
}
