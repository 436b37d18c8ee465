package globals

import (
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
)

var VisionService *appschema.ServiceConnection
var GenerativeService *appschema.ServiceConnection
var RequestStore appschema.RequestStore
