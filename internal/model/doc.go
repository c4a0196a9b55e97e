// Package model defines domain data structures used across the app: format
// descriptors, selection options, video metadata, download tasks, progress
// events and the status enums that drive a single interactive run.
package model
