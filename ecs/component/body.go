package component

import "github.com/milk9111/cavehop/physics"

// Body is the kinematic AABB moved by the physics system.
var BodyComponent = NewComponent[physics.Body]()

// Intent is what a controller wants its body to do this frame.
var IntentComponent = NewComponent[physics.Intent]()

// Contacts holds the result of the latest resolver step for the entity.
var ContactsComponent = NewComponent[physics.Contacts]()
