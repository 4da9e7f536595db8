package world

var BatchSize = batchSize
