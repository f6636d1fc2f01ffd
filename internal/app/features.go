package app

import (
	"github.com/pagecraft/pagewire/features/cursorlabel"
	"github.com/pagecraft/pagewire/features/floatingpanel"
	"github.com/pagecraft/pagewire/features/videomodal"
	"github.com/pagecraft/pagewire/internal/action"
)

// builtinFeatures is the definitive list of mountable chrome features
// compiled into the pagewire binary, used to verify runtime wiring for
// resolved and pre-configured overlays.
var builtinFeatures = []action.Mountable{
	&videomodal.Feature{},
	&cursorlabel.Feature{},
	&floatingpanel.Feature{},
}
