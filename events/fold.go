package events

import "github.com/spellforge/client-go/util"

// FoldFunc combines the prior state and a decoded payload into the next
// state. Folds are pure value transformations: they replace exactly one
// slot and leave connection metadata and the activity timestamp to the
// manager.
type FoldFunc func(prev State, p Payload) State

func foldConnected(prev State, p Payload) State {
	cp, ok := p.(ConnectedPayload)
	if !ok {
		return prev
	}
	prev.Server = ServerInfo{ClientID: cp.ClientID, ProtocolVersion: cp.ProtocolVersion}
	return prev
}

func foldPing(prev State, p Payload) State {
	pp, ok := p.(PingPayload)
	if !ok {
		return prev
	}
	prev.Ping = PingStatus{LastServerTime: pp.ServerTime, Count: prev.Ping.Count + 1}
	return prev
}

func foldLLMStarted(prev State, p Payload) State {
	sp, ok := p.(GenerationStartedPayload)
	if !ok {
		return prev
	}
	// A new started always resets the slot, even from a terminal status.
	prev.LLM = LLMGeneration{ID: sp.ID, Status: GenerationRunning}
	return prev
}

func foldLLMUpdate(prev State, p Payload) State {
	up, ok := p.(LLMProgressPayload)
	if !ok || prev.LLM.Status != GenerationRunning || up.ID != prev.LLM.ID {
		return prev
	}
	next := prev.LLM
	next.Tokens = util.Ptr(up.TokensSoFar)
	prev.LLM = next
	return prev
}

func foldLLMCompleted(prev State, p Payload) State {
	cp, ok := p.(LLMCompletedPayload)
	if !ok || prev.LLM.Status != GenerationRunning || cp.ID != prev.LLM.ID {
		return prev
	}
	next := prev.LLM
	next.Status = GenerationCompleted
	next.Result = cp.Result
	prev.LLM = next
	return prev
}

func foldLLMFailed(prev State, p Payload) State {
	fp, ok := p.(GenerationFailedPayload)
	if !ok || prev.LLM.Status != GenerationRunning || fp.ID != prev.LLM.ID {
		return prev
	}
	next := prev.LLM
	next.Status = GenerationFailed
	next.Error = fp.Error
	prev.LLM = next
	return prev
}

func foldImageStarted(prev State, p Payload) State {
	sp, ok := p.(GenerationStartedPayload)
	if !ok {
		return prev
	}
	prev.Image = ImageGeneration{ID: sp.ID, Status: GenerationRunning}
	return prev
}

func foldImageUpdate(prev State, p Payload) State {
	up, ok := p.(ImageProgressPayload)
	if !ok || prev.Image.Status != GenerationRunning || up.ID != prev.Image.ID {
		return prev
	}
	next := prev.Image
	next.ElapsedSeconds = util.Ptr(up.ElapsedSeconds)
	prev.Image = next
	return prev
}

func foldImageCompleted(prev State, p Payload) State {
	cp, ok := p.(ImageCompletedPayload)
	if !ok || prev.Image.Status != GenerationRunning || cp.ID != prev.Image.ID {
		return prev
	}
	next := prev.Image
	next.Status = GenerationCompleted
	next.ImageURL = cp.URL
	prev.Image = next
	return prev
}

func foldImageFailed(prev State, p Payload) State {
	fp, ok := p.(GenerationFailedPayload)
	if !ok || prev.Image.Status != GenerationRunning || fp.ID != prev.Image.ID {
		return prev
	}
	next := prev.Image
	next.Status = GenerationFailed
	next.Error = fp.Error
	prev.Image = next
	return prev
}

func foldQueue(prev State, p Payload) State {
	qp, ok := p.(QueueSnapshotPayload)
	if !ok {
		return prev
	}
	items := make([]QueueItem, len(qp.Items))
	for i, it := range qp.Items {
		status := QueueItemStatus(it.Status)
		if status == "" {
			status = QueuePending
		}
		items[i] = QueueItem{ID: it.ID, Kind: it.Kind, Status: status}
	}
	prev.Queue = QueueSnapshot{Items: items}
	return prev
}
