// Package confloader provides configuration loading mechanism.
//
// It uses Koanf to merge configuration from multiple sources with
// priority: Env > File > Environment preset. A companion fsnotify
// watcher reacts to config file edits at runtime.
package confloader
