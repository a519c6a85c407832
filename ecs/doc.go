// Package ecs provides ECS adapters for interactable notifications.
//
// The primary adapter is [NewDonburiStore], which bridges element
// notifications (click, voice command, state change) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	btn, err := interactable.New(cfg, interactable.WithEntityStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
