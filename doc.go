// Package spruce is a particle formation engine for decorative 3D scenes,
// built on [Ebitengine].
//
// Spruce animates thousands of small instances (needles, ornaments, string
// lights) between two formations: a dispersed cloud and an assembled tree
// silhouette. A single damped scalar per particle category drives the
// transition; secondary motion (floating drift, tumble, blink, idle spin)
// keeps the scene alive on both sides of it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, a
// renderer, and a game loop for you:
//
//	scene, err := spruce.NewScene(spruce.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	spruce.Run(scene, spruce.RunConfig{
//		Title: "Tree", Width: 960, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// and [Scene.Compose] directly, submitting instance buffers to your own
// [Renderer].
//
// # Model
//
// Each category (needles, gold ornaments, red ornaments, lights) is a
// [ParticleSet]: a fixed-size collection whose per-particle poses are
// generated once at creation (a sphere-volume sample for the scattered
// formation, an irregular cone-surface sample for the tree) and never
// regenerated. The only mutable state is the set's shared progress scalar,
// advanced by time-based exponential damping ([Advance]), and the hover/click
// flags on ornament sets ([InteractionState]).
//
// Every frame, [ParticleSet.Compose] folds progress, elapsed time, and
// interaction state into one [Instance] per particle, written into a
// preallocated buffer a renderer consumes directly.
//
// Scene configs load from YAML ([LoadConfig]), user settings persist via
// [SettingsManager], interaction chimes play through [Chimer], and
// interaction events can be bridged into a Donburi ECS world with the
// spruce/ecs subpackage.
//
// [Ebitengine]: https://ebitengine.org
package spruce
