package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

const banner = `
                                          __ 
 ___ ___  ___  ___ ___ ________ ____  / /  
/_ // _ \/ _ \/ -_) _ \/ __/ _ \/ _ \/ _ \ 
/__/\___/_//_/\__/\_, /_/  \_,_/ .__/_//_/ 
                 /___/        /_/          
`

// version is the current version of zonegraph
const version = `v0.1.0`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates zonegraph
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("zonegraph", version)()
	}
}
